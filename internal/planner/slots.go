package planner

// daySlots is presentation metadata only; activity durations are not checked
// against slot width.
var daySlots = [...]string{
	"9:00 AM - 12:00 PM",
	"1:00 PM - 3:00 PM",
	"4:00 PM - 6:00 PM",
}

func slotFor(indexWithinDay int) string {
	if indexWithinDay < 0 {
		indexWithinDay = 0
	}
	return daySlots[indexWithinDay%len(daySlots)]
}
