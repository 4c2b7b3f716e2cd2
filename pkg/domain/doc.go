// Package domain contains the read-only records owned by the backend services
// (candidates, applications, interviews, jobs, companies and reviews) and the
// composite views the gateway assembles from them. Records are never created
// or mutated here; they are decoded from backend responses, combined and
// discarded at the end of a request.
package domain
