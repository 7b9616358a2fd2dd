/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object stored under the
"_c:<package>" key. Configurations are created from the genesis file and may
be updated later by their owner, using the UpdateConfigurationHandler.
*/
package gconf
