/*
Package rewards pays block producers.

Every block credits a fixed payment to its producer and tops up a shared
pool proportionally to the time elapsed since the previous block. Producers
claim their accrued payments at most once a day, together with a share of
the pool proportional to their vote weight, provided they are among the
PayedProducers most voted active producers.
*/
package rewards
