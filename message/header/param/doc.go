// Package param handles parameterized header field bodies, mainly
// Content-type and Content-disposition, and provides helpers for picking
// apart the MIME type stored in Content-type.
package param
