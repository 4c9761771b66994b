// Package bmo implements the BMO cipher, a five stage reversible text obfuscation.
//
// Encoding draws a random salt and the current millisecond timestamp; both travel inside
// the ciphertext header, so decoding needs no key. The result is framed as
//
//	BMO<base64 with "_" and "-" in place of "+" and "/", unpadded>END
//
// BMO is not encryption. Anyone who knows the scheme can decode it.
package bmo
