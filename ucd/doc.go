/*
Package ucd provides the Unicode character properties needed by the
complex-script shapers: general category, Arabic joining type, modified
combining class and the default-ignorable property.

All functions are pure lookups and safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd
