/*
Package weavetest provides test doubles for the interfaces declared in the
root package and in x, so that extensions can be tested in isolation.
*/
package weavetest
