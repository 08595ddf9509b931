// Package workers provides the background jobs of the client and a Workers
// aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job. Start returns immediately; the job runs until
// ctx is cancelled or Stop is called. Stop blocks until the job has exited
// and is safe to call when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ExpiringSession is the part of the auth manager the session expiry worker
// depends on.
type ExpiringSession interface {
	Token() string
	Logout(ctx context.Context)
}
