package servicemanager

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
)

// listeners records the addresses the gateway serves on, for /listeners.
var listeners = struct {
	sync.RWMutex
	names []string
}{}

func AddListenerInfo(name string) {
	listeners.Lock()
	defer listeners.Unlock()

	listeners.names = append(listeners.names, name)
}

// GetListenerInfos returns the registered listeners sorted by name.
func GetListenerInfos() []string {
	listeners.RLock()
	defer listeners.RUnlock()

	names := make([]string, len(listeners.names))
	copy(names, listeners.names)
	sort.Strings(names)

	return names
}

// ListenerInfoHandler serves the registered listeners as a JSON array.
func ListenerInfoHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(GetListenerInfos())
}
