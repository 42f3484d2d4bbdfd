// Package contacthash normalizes email addresses and phone numbers into
// one canonical textual form and derives deterministic SHA-256 content
// hashes (hex and Base64) from that form, so identities can be matched
// without exposing the raw values.
//
// Single values go through ProcessEmail/ProcessPhone or the session
// types; undeclared mixed input goes through the batch subpackage.
package contacthash
