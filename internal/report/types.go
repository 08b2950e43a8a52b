package report

// ModifiedFile describes a source-language file changed between two revisions.
type ModifiedFile struct {
	Path      string
	ShortStat string
	Diff      string
}

// RenamedFile describes a source-language file moved between two revisions.
type RenamedFile struct {
	StatusToken     string
	SourcePath      string
	DestinationPath string
}

// Classification groups changed source-language files whose localized
// counterparts still exist at the newer revision.
type Classification struct {
	ModifiedFiles []ModifiedFile
	RenamedFiles  []RenamedFile
	DeletedPaths  []string
}

// ReportData carries everything the issue template needs.
type ReportData struct {
	OlderRevision string
	NewerRevision string
	SourcePath    string
	TargetPath    string
	ModifiedFiles []ModifiedFile
	RenamedFiles  []RenamedFile
	DeletedPaths  []string
}
