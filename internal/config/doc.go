// Package config reads the flat key/value configuration files that drive a
// TSEB run. The file format is one `key = value` pair per line with no
// section headers; keys are looked up in the parser's default section, so
// callers never deal with sections at all.
//
// Lookups are typed. A missing key yields a *MissingParameterError and a key
// whose value cannot be parsed as the requested type yields a
// *CoercionError naming the key and the expected type. Optional keys are
// handled by checking Has before reading.
package config
