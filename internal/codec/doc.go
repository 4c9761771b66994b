// Package codec provides the registry of named text transforms.
//
// Supported methods:
//   - caesar: fixed shift of 3 over ASCII letters
//   - atbash: mirrored alphabet, self-inverse
//   - reverse: code point reversal, self-inverse
//   - base64: standard padded Base64 over UTF-8
//   - bmo: the multi-stage BMO obfuscation (see package bmo)
//
// None of these are encryption. Unknown methods pass the input through unchanged.
package codec
