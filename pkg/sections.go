package pkg

// SectionKind identifies one flavor of auto-generated command section.
type SectionKind string

const (
	SectionCustomStorage SectionKind = "customStorage"
	SectionTeamwiseData  SectionKind = "teamwiseData"
	SectionTensorBoard   SectionKind = "tensorBoard"
)

type markerPair struct {
	Begin string
	End   string
}

var sectionMarkers = map[SectionKind]markerPair{
	SectionCustomStorage: {customStorageCmdStart, customStorageCmdEnd},
	SectionTeamwiseData:  {teamwiseDataCmdStart, teamwiseDataCmdEnd},
	SectionTensorBoard:   {tensorBoardCmdStart, tensorBoardCmdEnd},
}

// Section is a well-formed marked range over a command list: Start is the
// index of the begin sentinel, End the index of the end sentinel, End > Start.
type Section struct {
	Kind  SectionKind
	Start int
	End   int
}

// FindSection locates the first well-formed section of the given kind: the
// first begin sentinel, then the first end sentinel strictly after it. A
// begin without an end (or vice versa) is malformed and reported as absent.
func FindSection(commands []string, kind SectionKind) (Section, bool) {
	markers := sectionMarkers[kind]
	for begin, command := range commands {
		if command != markers.Begin {
			continue
		}
		for end := begin + 1; end < len(commands); end++ {
			if commands[end] == markers.End {
				return Section{Kind: kind, Start: begin, End: end}, true
			}
		}
		return Section{}, false
	}
	return Section{}, false
}

// ScanSections reports every well-formed section present, at most one per
// kind.
func ScanSections(commands []string) []Section {
	sections := make([]Section, 0, len(sectionMarkers))
	for _, kind := range []SectionKind{SectionCustomStorage, SectionTeamwiseData, SectionTensorBoard} {
		if section, ok := FindSection(commands, kind); ok {
			sections = append(sections, section)
		}
	}
	return sections
}

// RemoveSections splices out the given kinds in order, re-locating each on
// the already-spliced list so earlier removals cannot leave stale indices.
// Malformed sections are left untouched. The input slice is not modified.
// Returned sections carry the indices they had at removal time.
func RemoveSections(commands []string, kinds ...SectionKind) ([]string, []Section) {
	remaining := commands
	var removed []Section
	for _, kind := range kinds {
		section, ok := FindSection(remaining, kind)
		if !ok {
			continue
		}
		spliced := make([]string, 0, len(remaining)-(section.End-section.Start+1))
		spliced = append(spliced, remaining[:section.Start]...)
		spliced = append(spliced, remaining[section.End+1:]...)
		remaining = spliced
		removed = append(removed, section)
	}
	return remaining, removed
}

// WrapSection builds a generated block: begin sentinel, the notice line, the
// commands, end sentinel.
func WrapSection(kind SectionKind, commands ...string) []string {
	markers := sectionMarkers[kind]
	block := make([]string, 0, len(commands)+3)
	block = append(block, markers.Begin, AutoGeneratedNotice)
	block = append(block, commands...)
	return append(block, markers.End)
}
