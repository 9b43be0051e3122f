/*
Package cycle decides when a new scheduling cycle starts.

A cycle lasts BlocksPerCycle seconds, counted from FirstBlockTimeInCycle.
The very first block of the chain always starts a cycle. Cycle boundaries
stay aligned to the original grid even if blocks were missed, so the anchor
passed to the Elector is the most recent grid point, not the block time.
*/
package cycle
