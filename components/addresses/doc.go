// Package addresses exposes postcode address lookup as a small, mountable
// net/http component. It proxies a lookup provider so the generated artifact
// can query addresses without embedding the upstream API key in the page.
package addresses
