// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are only honoured when listed as trusted, since any
// client can set them:
//
//	ip := clientip.NewResolver("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(ratelimiter.Middleware(bucket, ip.IP))
package clientip
