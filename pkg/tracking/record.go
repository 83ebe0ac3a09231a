package tracking

type RecordStatus string

const (
	StatusPublished            RecordStatus = "Published"
	StatusManuallyCreated                   = "Manually_Created"
	StatusAutomaticallyCreated              = "Automatically_Created"
	StatusNotVisible                        = "Not_Visible"
)

type SystemID string

const (
	SystemReference SystemID = "reference"
	SystemB         SystemID = "systemB"
	SystemC         SystemID = "systemC"
)

// SystemRecord is one record-keeping system's view of a service.
// Invariant: an invisible record always has status Not_Visible.
type SystemRecord struct {
	Status   RecordStatus
	Visible  bool
	Schedule JourneySchedule
}

// SystemSet holds the three system records of a service. The reference
// system is authoritative, the two downstream systems are compared against
// it.
type SystemSet struct {
	Reference SystemRecord
	SystemB   SystemRecord
	SystemC   SystemRecord
}

func (s *SystemSet) Get(id SystemID) *SystemRecord {
	switch id {
	case SystemReference:
		return &s.Reference
	case SystemB:
		return &s.SystemB
	case SystemC:
		return &s.SystemC
	}

	return nil
}
