package models

import "fmt"

// Workload is one named entry in the fixed catalog of dataset sizes. Each
// size maps to a fixed number of stored objects and a fixed number of events
// per object. Object payloads land around 1MB, so object count scales
// linearly with the nominal size in GB.
type Workload struct {
	Name            string
	SizeGB          int
	ObjectCount     int
	EventsPerObject int
}

const eventsPerObject = 1024

var workloadCatalog = []Workload{
	newWorkload(5),
	newWorkload(10),
	newWorkload(15),
	newWorkload(20),
	newWorkload(25),
}

func newWorkload(sizeGB int) Workload {
	return Workload{
		Name:            fmt.Sprintf("%dgb", sizeGB),
		SizeGB:          sizeGB,
		ObjectCount:     sizeGB * 1024,
		EventsPerObject: eventsPerObject,
	}
}

// AllWorkloads returns the full catalog in ascending size order.
func AllWorkloads() []Workload {
	out := make([]Workload, len(workloadCatalog))
	copy(out, workloadCatalog)
	return out
}

// WorkloadByName looks up a catalog entry by its size name (e.g. "5gb").
func WorkloadByName(name string) (Workload, error) {
	for _, w := range workloadCatalog {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("unknown workload size %q (valid: %s)", name, WorkloadNames())
}

// WorkloadNames returns the catalog names as a comma-separated list, for
// flag help text and error messages.
func WorkloadNames() string {
	names := ""
	for i, w := range workloadCatalog {
		if i > 0 {
			names += ", "
		}
		names += w.Name
	}
	return names
}
