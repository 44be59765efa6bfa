// Package output renders member models for inspection and writes them to
// disk. Expressions and statements are rendered in their compact textual
// form; printing target-language source is left to downstream printers.
package output
