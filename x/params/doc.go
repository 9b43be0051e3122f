/*
Package params keeps the economic parameters of the chain: the scheduling
cycle configuration, the producer payment rates and the shared reward pool
accumulators.

The parameters are a single record kept in the configuration store. It is
created lazily: until the first write, readers get the default values.
*/
package params
