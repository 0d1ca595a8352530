package fasta

import (
	"fmt"
)

// What a header parser is fed during validation. The content does not
// matter, but it is fixed so a deterministic parser gives a
// deterministic answer.
const probeHeader = "this test string should work"

// checkParser runs the caller's header parser once on a canary string
// before the real parse begins. A parser that panics, or eats the whole
// string, would otherwise blow up half way through a file.
func checkParser(hp func(string) string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: header parser failed on test input: %v", ErrConfig, r)
		}
	}()
	hp(probeHeader)
	return nil
}

func validAction(a Action, allowConvert bool) bool {
	switch a {
	case Ignore, Fail, Remove:
		return true
	case Convert:
		return allowConvert
	}
	return false
}

// CheckInputs looks at every option before any parsing work starts.
// If anything does not make sense, it returns an error wrapping
// ErrConfig naming the offending option. It has no side effects.
func CheckInputs(s_opts *Options) error {
	if s_opts.HeaderParser != nil {
		if err := checkParser(s_opts.HeaderParser); err != nil {
			return err
		}
	}
	if !validAction(s_opts.DupRecordAction, false) {
		return fmt.Errorf("%w: duplicate record action %q must be one of ignore, fail, remove",
			ErrConfig, s_opts.DupRecordAction)
	}
	if !validAction(s_opts.DupSeqAction, false) {
		return fmt.Errorf("%w: duplicate sequence action %q must be one of ignore, fail, remove",
			ErrConfig, s_opts.DupSeqAction)
	}
	if !validAction(s_opts.InvalidSeqAction, true) {
		return fmt.Errorf("%w: invalid sequence action %q must be one of ignore, fail, remove, convert",
			ErrConfig, s_opts.InvalidSeqAction)
	}
	// Ignoring duplicate records while expecting unique headers is a
	// contradiction. Refuse it rather than guess what was meant.
	if s_opts.DupRecordAction == Ignore && s_opts.ExpectUniqueHeader {
		return fmt.Errorf("%w: cannot expect unique headers and ignore duplicate records", ErrConfig)
	}
	return nil
}
