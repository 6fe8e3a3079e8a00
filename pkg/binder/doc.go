// Package binder decodes HTTP request data into Go structs.
//
// JSON binds application/json bodies with a size limit and strict field
// checking. Form binds urlencoded and multipart bodies through `form` struct
// tags, Query binds URL parameters through `query` tags and Any picks JSON or
// Form from the Content-Type header.
//
//	type StaffForm struct {
//	    Email string `json:"email" form:"email"`
//	    Phone string `json:"phone" form:"phone"`
//	}
//
//	var f StaffForm
//	if err := binder.Any()(r, &f); err != nil {
//	    switch {
//	    case errors.Is(err, binder.ErrUnsupportedMediaType):
//	        // 415
//	    default:
//	        // 400
//	    }
//	}
//
// All binders return errors wrapping one of the package sentinels so callers
// can map them to HTTP status codes with errors.Is.
package binder
