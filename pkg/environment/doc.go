// Package environment carries the application environment (development,
// staging, production) through context.Context, HTTP middleware and logs.
//
//	r.Use(environment.Middleware(environment.Environment(cfg.Env)))
//
//	if environment.IsProduction(r.Context()) {
//	    // hide internal error details
//	}
package environment
