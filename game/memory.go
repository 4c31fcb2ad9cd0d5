package game

// MemoryRecord is what an AI color remembers about one cell.
type MemoryRecord struct {
	Kind Kind
	Turn int // Turn.Turns when the kind was observed
}

// RecallPolicy is the part of an AI skill profile memory decay depends on.
type RecallPolicy interface {
	// RecallWindow is the number of turns a record stays valid.
	RecallWindow() int
}

// AIMemory holds, per AI color, the kinds it has observed keyed by cell
// index. Colors never share records. Every operation is a no-op on missing
// keys.
type AIMemory map[Color]map[int]MemoryRecord

func NewAIMemory() AIMemory {
	return make(AIMemory)
}

// Remember upserts color's record for index.
func (m AIMemory) Remember(color Color, index int, kind Kind, currentTurn int) {
	records, ok := m[color]
	if !ok {
		records = make(map[int]MemoryRecord)
		m[color] = records
	}
	records[index] = MemoryRecord{Kind: kind, Turn: currentTurn}
}

// Recall returns color's record for index.
func (m AIMemory) Recall(color Color, index int) (MemoryRecord, bool) {
	rec, ok := m[color][index]
	return rec, ok
}

// Forget drops color's record for index.
func (m AIMemory) Forget(color Color, index int) {
	delete(m[color], index)
}

// ForgetExpired prunes every record of color older than the policy's recall
// window. A window of zero or less wipes color's memory entirely.
func (m AIMemory) ForgetExpired(color Color, policy RecallPolicy, currentTurn int) {
	window := policy.RecallWindow()
	if window <= 0 {
		delete(m, color)
		return
	}
	for index, rec := range m[color] {
		if currentTurn-rec.Turn > window {
			delete(m[color], index)
		}
	}
}

// Migrate follows a piece that moved from from to dest. The record keeps its
// kind and is stamped with the current turn.
func (m AIMemory) Migrate(color Color, from, dest int, currentTurn int) bool {
	rec, ok := m[color][from]
	if !ok {
		return false
	}
	delete(m[color], from)
	m[color][dest] = MemoryRecord{Kind: rec.Kind, Turn: currentTurn}
	return true
}

// Len is the number of records color holds.
func (m AIMemory) Len(color Color) int {
	return len(m[color])
}

// Clear drops everything color remembers.
func (m AIMemory) Clear(color Color) {
	delete(m, color)
}
