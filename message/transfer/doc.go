// Package transfer applies and removes the Content-transfer-encoding of a
// message part. Only quoted-printable and base64 change the bytes. Anything
// else, including 7bit, 8bit, binary, and unrecognized names, is passed
// through as-is.
//
// Here "decoded" means the bytes are in the part's charset encoding and
// "encoded" means they are in the named transfer encoding.
package transfer
