package dto

// AuthSummary is the dashboard widget aggregate. OAuth counters are zero
// when the provider integration is off.
type AuthSummary struct {
	TotalUsers     int64
	RecentSignups  int64
	StaffCount     int64
	SuperuserCount int64
	LinkedUsers    int64
	ProviderCount  int
}
