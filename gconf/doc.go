/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps at most one configuration record, stored under a key
derived from the extension package name. Records can be loaded from the
"conf" section of the genesis file, where each extension owns its own key.
*/
package gconf
