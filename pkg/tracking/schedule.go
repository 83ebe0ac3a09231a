package tracking

// StopTime is one timing point entry. The zero value means the stop is not
// served.
type StopTime struct {
	Time           string
	BorderCrossing bool
	Changed        bool
}

// Served reports whether the stop has a time at all.
func (st StopTime) Served() bool {
	return st.Time != ""
}

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionReturn   Direction = "return"
)

// StopSlot identifies one of the twelve timing points along the route.
// Outbound runs PNO -> Wannehain -> BRU -> Hazeldonk -> AMS, the return leg
// mirrors it. Stop access always goes through this enum so that a typo can
// never silently read an "absent" stop.
type StopSlot int

const (
	OutboundPNODeparture StopSlot = iota
	OutboundWNHArrival
	OutboundBRUArrival
	OutboundBRUDeparture
	OutboundHDKArrival
	OutboundAMSArrival
	ReturnAMSDeparture
	ReturnHDKArrival
	ReturnBRUArrival
	ReturnBRUDeparture
	ReturnWNHArrival
	ReturnPNOArrival

	StopSlotCount
)

type StopInfo struct {
	Direction Direction
	Station   string
	Code      string
}

var stopTable = [StopSlotCount]StopInfo{
	OutboundPNODeparture: {DirectionOutbound, "PNO", "pno_dep"},
	OutboundWNHArrival:   {DirectionOutbound, "WNH", "wnh_arr"},
	OutboundBRUArrival:   {DirectionOutbound, "BRU", "bru_arr"},
	OutboundBRUDeparture: {DirectionOutbound, "BRU", "bru_dep"},
	OutboundHDKArrival:   {DirectionOutbound, "HDK", "hdk_arr"},
	OutboundAMSArrival:   {DirectionOutbound, "AMS", "ams_arr"},
	ReturnAMSDeparture:   {DirectionReturn, "AMS", "ams_dep"},
	ReturnHDKArrival:     {DirectionReturn, "HDK", "hdk_arr"},
	ReturnBRUArrival:     {DirectionReturn, "BRU", "bru_arr"},
	ReturnBRUDeparture:   {DirectionReturn, "BRU", "bru_dep"},
	ReturnWNHArrival:     {DirectionReturn, "WNH", "wnh_arr"},
	ReturnPNOArrival:     {DirectionReturn, "PNO", "pno_arr"},
}

func (s StopSlot) Info() StopInfo {
	return stopTable[s]
}

func (s StopSlot) String() string {
	info := stopTable[s]
	return string(info.Direction) + " " + info.Code
}

// JourneySchedule holds the stop times for both directions of a service,
// indexed by StopSlot.
type JourneySchedule struct {
	Stops [StopSlotCount]StopTime
}

func (js *JourneySchedule) At(slot StopSlot) StopTime {
	return js.Stops[slot]
}

func (js *JourneySchedule) Set(slot StopSlot, stopTime StopTime) {
	js.Stops[slot] = stopTime
}
