package tracking

// SetVisible flips visibility and keeps the status consistent in the same
// operation: an invisible record is always Not_Visible, a record made
// visible again takes the given status.
func (r *SystemRecord) SetVisible(visible bool, restore RecordStatus) {
	r.Visible = visible

	if visible {
		r.Status = restore
	} else {
		r.Status = StatusNotVisible
	}
}

// SetStopTime edits one stop time on a system record. An empty value removes
// the stop. When a template schedule is given, the Changed flag marks times
// that deviate from it and the BorderCrossing flag is carried over from the
// template stop.
func (r *SystemRecord) SetStopTime(slot StopSlot, value string, template *JourneySchedule) {
	if value == "" {
		r.Schedule.Set(slot, StopTime{})
		return
	}

	stopTime := StopTime{Time: value}

	if template != nil {
		if templateTime := template.At(slot); templateTime.Served() {
			stopTime.Changed = templateTime.Time != value
			stopTime.BorderCrossing = templateTime.BorderCrossing
		} else {
			// Stop not served in the template at all
			stopTime.Changed = true
		}
	}

	r.Schedule.Set(slot, stopTime)
}

func (s *Service) SetVerified(id SystemID, verified bool) {
	switch id {
	case SystemB:
		s.Verification.SystemBOK = verified
	case SystemC:
		s.Verification.SystemCOK = verified
	}
}
