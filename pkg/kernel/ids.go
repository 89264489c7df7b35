package kernel

type ReportID string

func NewReportID(id string) ReportID { return ReportID(id) }
func (r ReportID) String() string    { return string(r) }
func (r ReportID) IsEmpty() bool     { return string(r) == "" }
