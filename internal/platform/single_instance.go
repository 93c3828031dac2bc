package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer process holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceGuard keeps a second timer window from opening while this
// process lives. The lock is a localhost listener on a port derived from
// the application name.
type InstanceGuard struct {
	appName  string
	listener net.Listener
}

// AcquireSingleInstance takes the lock for appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := lockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%s: %w (lock %s held: %v)", appName, ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{appName: appName, listener: listener}, nil
}

// AppName returns the name the lock was taken for.
func (guard *InstanceGuard) AppName() string {
	if guard == nil {
		return ""
	}
	return guard.appName
}

// Release frees the lock so another timer can start.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	if err := guard.listener.Close(); err != nil {
		return fmt.Errorf("%s: release instance lock: %w", guard.appName, err)
	}
	guard.listener = nil
	return nil
}

func lockAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
}

func lockPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return lockPortMin + int(hash.Sum32()%uint32(lockPortMax-lockPortMin+1))
}
