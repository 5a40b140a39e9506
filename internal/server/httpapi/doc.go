// Package httpapi exposes the tag service over JSON/HTTP.
//
// Routes
//
//	GET    /ping
//	GET    /users
//	POST   /users/{user_id}
//	GET    /users/{user_id}/tags
//	POST   /users/{user_id}/tags          {"tags": ["rock", ...]}
//	GET    /users/{user_id}/tags/{tag}
//	DELETE /users/{user_id}/tags/{tag}
//	GET    /tags
//	GET    /tags/{tag}/users
//	GET    /stats
//	DELETE /store
//
// Every response body is an envelope {"status", "message", "data"} where
// status is "success" or "error". Removing a tag the user does not hold
// answers 404; blank ids and malformed bodies answer 400.
package httpapi
