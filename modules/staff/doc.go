// Package staff validates staff records submitted by the admin UI.
//
// Form carries the raw input, Schema describes the rules per Mode and
// Service exposes them over HTTP:
//
//	svc := staff.NewService(cfg.Options(), log)
//	r.Mount("/staff", svc.Handle())
//
// A rejected form yields 422 with one message per failed field:
//
//	{"valid":false,"errors":{"email":"Email must be a valid email address"}}
package staff
