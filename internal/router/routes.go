// Package router holds the client route table and the guard that gates
// protected routes on the current session.
package router

import "strings"

const (
	Login           = "/auth/login"
	Signup          = "/auth/signup"
	Dashboard       = "/dashboard"
	ResumeUpload    = "/resume-upload"
	Timeline        = "/timeline"
	Qna             = "/qna"
	Recommendations = "/recommendations"
	Insights        = "/insights"
)

// Protected lists the routes that require an authenticated session, in menu order.
var Protected = []string{Dashboard, ResumeUpload, Timeline, Qna, Recommendations, Insights}

var public = map[string]struct{}{
	Login:  {},
	Signup: {},
}

// Resolve maps a requested path onto a known route. The empty path and
// unknown paths land on the dashboard; "/auth" lands on login.
func Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	switch {
	case path == "" || path == "/":
		return Dashboard
	case path == "/auth":
		return Login
	case IsPublic(path) || IsProtected(path):
		return path
	default:
		return Dashboard
	}
}

func IsProtected(path string) bool {
	for _, p := range Protected {
		if p == path {
			return true
		}
	}
	return false
}

func IsPublic(path string) bool {
	_, ok := public[path]
	return ok
}
