package calendar

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

var (
	zoneMu    sync.RWMutex
	zoneCache = make(map[string]*time.Location)
)

// LoadLocation resolves an IANA zone name, memoizing the result process-wide.
// The empty name and "Local" are rejected: a term must resolve the same way on
// every host.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w %q", ErrUnknownZone, name)
	}

	zoneMu.RLock()
	loc, ok := zoneCache[name]
	zoneMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownZone, name)
	}

	zoneMu.Lock()
	zoneCache[name] = loc
	zoneMu.Unlock()
	return loc, nil
}
