package rijndael

import "fmt"

// Direction selects encryption or decryption for a Stepper.
type Direction int

const (
	// Forward runs the cipher.
	Forward Direction = iota

	// Backward runs the inverse cipher.
	Backward
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Stage names the last transform applied to a Stepper's state.
type Stage int

const (
	// StageInit is the untouched input block.
	StageInit Stage = iota

	// StageKeyExpanded follows key expansion; the state is unchanged.
	StageKeyExpanded

	// Stages of the forward cipher, in order. The initial key addition is
	// StageRoundKeyAdded and each of rounds 1-9 ends with StageAddRoundKey.
	StageRoundKeyAdded
	StageSubBytes
	StageShiftRows
	StageMixColumns
	StageAddRoundKey

	// Stages of the last round, which skips MixColumns.
	StageFinalSubBytes
	StageFinalShiftRows
	StageFinalAddRoundKey

	// Inverse transforms used by a Backward stepper.
	StageInvShiftRows
	StageInvSubBytes
	StageInvMixColumns

	// StageDone marks a fully processed block.
	StageDone
)

var stageNames = [...]string{
	StageInit:             "Init",
	StageKeyExpanded:      "KeyExpanded",
	StageRoundKeyAdded:    "RoundKeyAdded",
	StageSubBytes:         "SubBytes",
	StageShiftRows:        "ShiftRows",
	StageMixColumns:       "MixColumns",
	StageAddRoundKey:      "AddRoundKey",
	StageFinalSubBytes:    "FinalSubBytes",
	StageFinalShiftRows:   "FinalShiftRows",
	StageFinalAddRoundKey: "FinalAddRoundKey",
	StageInvShiftRows:     "InvShiftRows",
	StageInvSubBytes:      "InvSubBytes",
	StageInvMixColumns:    "InvMixColumns",
	StageDone:             "Done",
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// step is one scheduled transition of a Stepper.
type step struct {
	stage Stage
	round int
}

// Stepper drives one block through the cipher one transform at a time.
// It is owned by a single caller and not safe for concurrent use.
type Stepper struct {
	dir   Direction
	key   []byte
	sbox  *SBox
	rk    RoundKeys
	state State

	plan  []step
	next  int
	stage Stage
	round int
}

// NewStepper prepares block for step-wise processing with key. The key is
// validated here so that no transform runs with a bad key. A nil sbox
// selects DefaultSBox.
func NewStepper(dir Direction, block [BlockSize]byte, key []byte, sbox *SBox) (*Stepper, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if dir != Forward && dir != Backward {
		return nil, fmt.Errorf("rijndael: invalid direction: %v", dir)
	}
	if sbox == nil {
		sbox = DefaultSBox()
	}

	st := &Stepper{
		dir:   dir,
		key:   append([]byte(nil), key...),
		sbox:  sbox,
		state: State(block),
		stage: StageInit,
	}
	if dir == Forward {
		st.plan = encryptPlan()
	} else {
		st.plan = decryptPlan()
	}
	return st, nil
}

// encryptPlan lists the forward stage sequence.
func encryptPlan() []step {
	plan := []step{{StageKeyExpanded, 0}, {StageRoundKeyAdded, 0}}
	for r := 1; r < Rounds; r++ {
		plan = append(plan,
			step{StageSubBytes, r},
			step{StageShiftRows, r},
			step{StageMixColumns, r},
			step{StageAddRoundKey, r})
	}
	return append(plan,
		step{StageFinalSubBytes, Rounds},
		step{StageFinalShiftRows, Rounds},
		step{StageFinalAddRoundKey, Rounds},
		step{StageDone, Rounds})
}

// decryptPlan mirrors encryptPlan with inverse transforms and round keys
// consumed from last to first.
func decryptPlan() []step {
	plan := []step{
		{StageKeyExpanded, Rounds},
		{StageRoundKeyAdded, Rounds},
		{StageInvShiftRows, Rounds},
		{StageInvSubBytes, Rounds},
	}
	for r := Rounds - 1; r > 0; r-- {
		plan = append(plan,
			step{StageAddRoundKey, r},
			step{StageInvMixColumns, r},
			step{StageInvShiftRows, r},
			step{StageInvSubBytes, r})
	}
	return append(plan,
		step{StageFinalAddRoundKey, 0},
		step{StageDone, 0})
}

// Step applies the next transform. It returns false once the stepper has
// reached StageDone.
func (st *Stepper) Step() bool {
	if st.next >= len(st.plan) {
		return false
	}
	s := st.plan[st.next]
	st.next++

	poly := st.sbox.polynomial
	switch s.stage {
	case StageKeyExpanded:
		// Key length was checked in NewStepper.
		st.rk, _ = ExpandKeyWith(st.key, st.sbox)
	case StageRoundKeyAdded, StageAddRoundKey, StageFinalAddRoundKey:
		st.state.addRoundKey(st.rk[BlockSize*s.round : BlockSize*(s.round+1)])
	case StageSubBytes, StageFinalSubBytes:
		st.state.subBytes(st.sbox)
	case StageShiftRows, StageFinalShiftRows:
		st.state.shiftRows()
	case StageMixColumns:
		st.state.mixColumns(poly)
	case StageInvShiftRows:
		st.state.invShiftRows()
	case StageInvSubBytes:
		st.state.invSubBytes(st.sbox)
	case StageInvMixColumns:
		st.state.invMixColumns(poly)
	}

	st.stage = s.stage
	st.round = s.round
	if debugEnabled {
		traceState(fmt.Sprintf("%v round %d %v", st.dir, s.round, s.stage), &st.state)
	}
	return s.stage != StageDone
}

// Run steps until StageDone and returns the resulting block.
func (st *Stepper) Run() [BlockSize]byte {
	for st.Step() {
	}
	return st.state
}

// Stage returns the last stage reached.
func (st *Stepper) Stage() Stage { return st.stage }

// Round returns the round of the last stage reached.
func (st *Stepper) Round() int { return st.round }

// State returns a copy of the current state.
func (st *Stepper) State() State { return st.state }

// Direction returns the direction the stepper runs in.
func (st *Stepper) Direction() Direction { return st.dir }

// Done reports whether the block has been fully processed.
func (st *Stepper) Done() bool { return st.stage == StageDone }
