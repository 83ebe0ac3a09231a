package tracking

// CompareStopTimes matches two stop times on the time string alone. The
// BorderCrossing and Changed flags are display attributes and never affect
// the outcome. Two unserved stops match.
func CompareStopTimes(a StopTime, b StopTime) bool {
	return a.Time == b.Time
}

// CompareSchedules reports whether two schedules agree on every one of the
// twelve stops. Two empty schedules compare equal - nothing to compare is
// not a conflict.
func CompareSchedules(a *JourneySchedule, b *JourneySchedule) bool {
	for slot := StopSlot(0); slot < StopSlotCount; slot++ {
		if !CompareStopTimes(a.At(slot), b.At(slot)) {
			return false
		}
	}

	return true
}

// HasData reports whether at least one stop carries a time.
func (js *JourneySchedule) HasData() bool {
	for slot := StopSlot(0); slot < StopSlotCount; slot++ {
		if js.At(slot).Served() {
			return true
		}
	}

	return false
}

// MissingRelativeTo distinguishes "never populated" from "populated but
// different": true when the reference has data and the other system has none
// at all.
func MissingRelativeTo(reference *JourneySchedule, other *JourneySchedule) bool {
	return reference.HasData() && !other.HasData()
}

// DiscrepancyVs reports a stop-by-stop mismatch against the reference
// system.
func DiscrepancyVs(reference *JourneySchedule, other *JourneySchedule) bool {
	return !CompareSchedules(reference, other)
}
