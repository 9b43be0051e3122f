/*
Package producers implements the registry of block producers.

Each producer record keeps the rewards accrued by that producer and the vote
weight it holds. Records are indexed by vote weight, so that the registry can
be read from the most to the least voted producer. That order decides both
the elected schedule and the producers sharing the reward pool.
*/
package producers
