package tzdata

import (
	"encoding/binary"
	"errors"
	"fmt"

	"chrono/internal/civil"
	"chrono/internal/zone"
)

// ErrDecode reports a malformed binary stream: an unknown type tag,
// truncation, or field values that cannot form valid rules.
var ErrDecode = errors.New("tzdata: decode failed")

// Type tags preceding each serialized object.
const (
	TagRules          = 1
	TagTransition     = 2
	TagTransitionRule = 3
)

const (
	offsetEscape = 127
	epochEscape  = 0xFF

	// Quarter-hour quantum shared by the offset and epoch-second forms.
	quantum = 900

	// The biased 24-bit epoch-second window covers 1825-01-01 to
	// 2300-01-01.
	epochBias = 4_575_744_000
	epochMax  = 10_413_792_000
)

// AppendOffset appends the compact form of an offset: one signed byte of
// quarter hours, or the escape byte and the full second count.
func AppendOffset(b []byte, o civil.Offset) []byte {
	seconds := o.TotalSeconds()
	if seconds%quantum == 0 {
		return append(b, byte(int8(seconds/quantum)))
	}
	b = append(b, offsetEscape)
	return binary.BigEndian.AppendUint32(b, uint32(int32(seconds)))
}

// AppendEpochSecond appends the compact form of an instant: three biased
// big-endian bytes when quarter-hour aligned inside the 1825..2300
// window, or the escape byte and the full value.
func AppendEpochSecond(b []byte, epochSecond int64) []byte {
	if epochSecond%quantum == 0 && epochSecond >= -epochBias && epochSecond < epochMax {
		biased := uint64(epochSecond+epochBias) / quantum
		return append(b, byte(biased>>16), byte(biased>>8), byte(biased))
	}
	b = append(b, epochEscape)
	return binary.BigEndian.AppendUint64(b, uint64(epochSecond))
}

// EncodeTransition appends a tagged transition record.
func EncodeTransition(b []byte, t zone.Transition) []byte {
	b = append(b, TagTransition)
	return appendTransition(b, t)
}

func appendTransition(b []byte, t zone.Transition) []byte {
	b = AppendEpochSecond(b, t.EpochSecond())
	b = AppendOffset(b, t.OffsetBefore())
	return AppendOffset(b, t.OffsetAfter())
}

// EncodeTransitionRule appends a tagged transition-rule record.
func EncodeTransitionRule(b []byte, r zone.TransitionRule) []byte {
	b = append(b, TagTransitionRule)
	return appendRule(b, r)
}

func appendRule(b []byte, r zone.TransitionRule) []byte {
	b = append(b, byte(r.Month), byte(int8(r.DayOfMonth)), byte(r.DayOfWeek))
	second := r.TimeOfDay.SecondOfDay()
	b = append(b, byte(second>>16), byte(second>>8), byte(second))
	flags := byte(r.Definition) << 1
	if r.EndOfDay {
		flags |= 1
	}
	b = append(b, flags)
	b = AppendOffset(b, r.StandardOffset)
	b = AppendOffset(b, r.OffsetBefore)
	return AppendOffset(b, r.OffsetAfter)
}

// EncodeRules appends a tagged rules record holding a zone's complete
// offset history. A history whose standard-change or transition count
// does not fit the record's 16-bit fields is rejected.
func EncodeRules(b []byte, z *zone.Rules) ([]byte, error) {
	b = append(b, TagRules)
	return appendRules(b, z)
}

// AppendRules appends the bare field sequence of a rules record, without
// the leading type tag.
func AppendRules(b []byte, z *zone.Rules) ([]byte, error) {
	return appendRules(b, z)
}

func appendRules(b []byte, z *zone.Rules) ([]byte, error) {
	changes := z.StandardChanges()
	transitions := z.Transitions()
	if len(changes) > 0xFFFF {
		return nil, fmt.Errorf("tzdata: %d standard changes exceed the record limit", len(changes))
	}
	if len(transitions) > 0xFFFF {
		return nil, fmt.Errorf("tzdata: %d transitions exceed the record limit", len(transitions))
	}

	b = AppendOffset(b, z.InitialStandardOffset())
	b = binary.BigEndian.AppendUint16(b, uint16(len(changes)))
	for _, sc := range changes {
		b = AppendEpochSecond(b, sc.EpochSecond)
		b = AppendOffset(b, sc.Offset)
	}
	b = AppendOffset(b, z.InitialOffset())
	b = binary.BigEndian.AppendUint16(b, uint16(len(transitions)))
	for _, t := range transitions {
		// The pre-transition offset is the previous record's
		// post-transition offset, so only the instant and the new offset
		// are stored.
		b = AppendEpochSecond(b, t.EpochSecond())
		b = AppendOffset(b, t.OffsetAfter())
	}
	rules := z.ProjectionRules()
	b = append(b, byte(len(rules)))
	for _, r := range rules {
		b = appendRule(b, r)
	}
	return b, nil
}

// Decode reads one tagged object from the front of data, returning the
// decoded value (*zone.Rules, zone.Transition, or zone.TransitionRule)
// and the number of bytes consumed.
func Decode(data []byte) (any, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty stream", ErrDecode)
	}
	r := &reader{data: data[1:]}
	var decoded any
	var err error
	switch data[0] {
	case TagRules:
		decoded, err = readRules(r)
	case TagTransition:
		decoded, err = readTransition(r, civil.Offset{}, false)
	case TagTransitionRule:
		decoded, err = readRule(r)
	default:
		return nil, 0, fmt.Errorf("%w: unknown type tag %d", ErrDecode, data[0])
	}
	if err != nil {
		return nil, 0, err
	}
	return decoded, 1 + r.pos, nil
}

// DecodeRules reads a complete rules record. Both the tagged framing and
// the bare field sequence are accepted; a leading rules tag is tried
// first and the bare form is used if the tagged read fails.
func DecodeRules(data []byte) (*zone.Rules, error) {
	if len(data) > 0 && data[0] == TagRules {
		r := &reader{data: data[1:]}
		rules, err := readRules(r)
		if err == nil && r.pos == len(r.data) {
			return rules, nil
		}
	}
	r := &reader{data: data}
	rules, err := readRules(r)
	if err != nil {
		return nil, err
	}
	if r.pos != len(r.data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(r.data)-r.pos)
	}
	return rules, nil
}

func readRules(r *reader) (*zone.Rules, error) {
	initialStandard, err := readOffset(r)
	if err != nil {
		return nil, err
	}
	changeCount, err := r.uint16()
	if err != nil {
		return nil, err
	}
	changes := make([]zone.StandardChange, 0, changeCount)
	for i := 0; i < int(changeCount); i++ {
		epochSecond, err := readEpochSecond(r)
		if err != nil {
			return nil, err
		}
		offset, err := readOffset(r)
		if err != nil {
			return nil, err
		}
		changes = append(changes, zone.StandardChange{EpochSecond: epochSecond, Offset: offset})
	}
	initialWall, err := readOffset(r)
	if err != nil {
		return nil, err
	}
	transitionCount, err := r.uint16()
	if err != nil {
		return nil, err
	}
	transitions := make([]zone.Transition, 0, transitionCount)
	wall := initialWall
	for i := 0; i < int(transitionCount); i++ {
		t, err := readTransition(r, wall, true)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
		wall = t.OffsetAfter()
	}
	ruleCount, err := r.byte()
	if err != nil {
		return nil, err
	}
	rules := make([]zone.TransitionRule, 0, ruleCount)
	for i := 0; i < int(ruleCount); i++ {
		rule, err := readRule(r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	built, err := zone.NewRules(initialStandard, initialWall, changes, transitions, rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return built, nil
}

// readTransition reads a transition record. In the chained rules form the
// pre-transition offset comes from the caller; the standalone form reads
// it from the stream.
func readTransition(r *reader, wall civil.Offset, chained bool) (zone.Transition, error) {
	epochSecond, err := readEpochSecond(r)
	if err != nil {
		return zone.Transition{}, err
	}
	before := wall
	if !chained {
		if before, err = readOffset(r); err != nil {
			return zone.Transition{}, err
		}
	}
	after, err := readOffset(r)
	if err != nil {
		return zone.Transition{}, err
	}
	local, err := civil.DateTimeOfEpochSecond(epochSecond, 0, before)
	if err != nil {
		return zone.Transition{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	t, err := zone.NewTransition(local, before, after)
	if err != nil {
		return zone.Transition{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return t, nil
}

func readRule(r *reader) (zone.TransitionRule, error) {
	header, err := r.take(7)
	if err != nil {
		return zone.TransitionRule{}, err
	}
	second := int(header[3])<<16 | int(header[4])<<8 | int(header[5])
	timeOfDay, err := civil.TimeOfSecondOfDay(second)
	if err != nil {
		return zone.TransitionRule{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	rule := zone.TransitionRule{
		Month:      int(header[0]),
		DayOfMonth: int(int8(header[1])),
		DayOfWeek:  int(header[2]),
		TimeOfDay:  timeOfDay,
		EndOfDay:   header[6]&1 != 0,
		Definition: zone.TimeDefinition(header[6] >> 1),
	}
	if rule.StandardOffset, err = readOffset(r); err != nil {
		return zone.TransitionRule{}, err
	}
	if rule.OffsetBefore, err = readOffset(r); err != nil {
		return zone.TransitionRule{}, err
	}
	if rule.OffsetAfter, err = readOffset(r); err != nil {
		return zone.TransitionRule{}, err
	}
	if err := rule.Validate(); err != nil {
		return zone.TransitionRule{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return rule, nil
}

func readOffset(r *reader) (civil.Offset, error) {
	quarters, err := r.byte()
	if err != nil {
		return civil.Offset{}, err
	}
	seconds := int(int8(quarters)) * quantum
	if quarters == offsetEscape {
		raw, err := r.take(4)
		if err != nil {
			return civil.Offset{}, err
		}
		seconds = int(int32(binary.BigEndian.Uint32(raw)))
	}
	o, err := civil.OffsetOfSeconds(seconds)
	if err != nil {
		return civil.Offset{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return o, nil
}

func readEpochSecond(r *reader) (int64, error) {
	head, err := r.byte()
	if err != nil {
		return 0, err
	}
	if head == epochEscape {
		raw, err := r.take(8)
		if err != nil {
			return 0, err
		}
		return int64(binary.BigEndian.Uint64(raw)), nil
	}
	rest, err := r.take(2)
	if err != nil {
		return 0, err
	}
	biased := int64(head)<<16 | int64(rest[0])<<8 | int64(rest[1])
	return biased*quantum - epochBias, nil
}

// reader walks a byte slice, turning over-reads into ErrDecode.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: truncated stream at byte %d", ErrDecode, r.pos)
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) byte() (byte, error) {
	raw, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

func (r *reader) uint16() (uint16, error) {
	raw, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(raw), nil
}
