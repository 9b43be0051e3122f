package currency

import (
	"math"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// Controller moves and issues tokens.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller working on the balance bucket.
func NewController() *Controller {
	return &Controller{bucket: NewBucket()}
}

// Balance returns the amount held by the account.
func (c *Controller) Balance(db aacsys.ReadOnlyKVStore, owner aacsys.AccountName) (int64, error) {
	bal, err := c.bucket.GetOrCreate(db, owner)
	if err != nil {
		return 0, err
	}
	return bal.Amount, nil
}

// Transfer moves quantity tokens from one account to another. It fails if
// the source does not hold enough tokens.
func (c *Controller) Transfer(ctx aacsys.Context, db aacsys.KVStore, from, to aacsys.AccountName, quantity int64, memo string) error {
	if quantity <= 0 {
		return errors.Wrap(errors.ErrAmount, "non positive quantity")
	}
	if from == to {
		return errors.Wrap(errors.ErrInput, "cannot transfer to self")
	}

	sender, err := c.bucket.GetOrCreate(db, from)
	if err != nil {
		return err
	}
	if sender.Amount < quantity {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %d < %d", sender.Amount, quantity)
	}
	recipient, err := c.bucket.GetOrCreate(db, to)
	if err != nil {
		return err
	}
	if recipient.Amount > math.MaxInt64-quantity {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}

	sender.Amount -= quantity
	recipient.Amount += quantity
	if err := c.bucket.Put(db, sender); err != nil {
		return errors.Wrap(err, "save sender")
	}
	if err := c.bucket.Put(db, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}

	aacsys.GetLogger(ctx).Debug("transfer",
		"from", from, "to", to, "quantity", quantity, "memo", memo)
	return nil
}

// Issue creates quantity new tokens on the account.
func (c *Controller) Issue(ctx aacsys.Context, db aacsys.KVStore, to aacsys.AccountName, quantity int64, memo string) error {
	if quantity <= 0 {
		return errors.Wrap(errors.ErrAmount, "non positive quantity")
	}
	recipient, err := c.bucket.GetOrCreate(db, to)
	if err != nil {
		return err
	}
	if recipient.Amount > math.MaxInt64-quantity {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	recipient.Amount += quantity
	if err := c.bucket.Put(db, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}

	aacsys.GetLogger(ctx).Debug("issue", "to", to, "quantity", quantity, "memo", memo)
	return nil
}
