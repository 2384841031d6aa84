package digits

import (
	"fmt"

	"fortio.org/safecast"
)

func (f *Family) shlMagnitude(d []Digit, count uint64) ([]Digit, error) {
	d = Trim(d)
	if IsZero(d) {
		return Zero(), nil
	}
	wordShift := count / uint64(f.shift)
	bitShift := uint(count % uint64(f.shift))
	if wordShift+uint64(len(d))+1 > MaxDigits {
		return nil, ErrCapacityExceeded
	}
	ws, err := safecast.Conv[int](wordShift)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	out := make([]Digit, ws+len(d)+1)
	out[ws+len(d)] = f.shlDigits(out[ws:ws+len(d)], d, bitShift)
	return Trim(out), nil
}

// shrMagnitude returns d >> count and whether any one bits were shifted out.
func (f *Family) shrMagnitude(d []Digit, count uint64) ([]Digit, bool) {
	d = Trim(d)
	wordShift := count / uint64(f.shift)
	if wordShift >= uint64(len(d)) {
		return Zero(), !IsZero(d)
	}
	ws, err := safecast.Conv[int](wordShift)
	if err != nil {
		return Zero(), !IsZero(d)
	}
	bitShift := uint(count % uint64(f.shift))
	lost := !IsZero(d[:ws])
	out := make([]Digit, len(d)-ws)
	if f.shrDigits(out, d[ws:], bitShift) != 0 {
		lost = true
	}
	return Trim(out), lost
}

// Shl returns a * 2^count. The result may not exceed MaxDigits digits.
func (f *Family) Shl(a Number, count uint64) (Number, error) {
	if a.Sign == 0 {
		return ZeroNumber(), nil
	}
	d, err := f.shlMagnitude(a.Digits, count)
	if err != nil {
		return Number{}, err
	}
	return Number{Sign: a.Sign, Digits: d}, nil
}

// Shr returns floor(a / 2^count); negative values round toward negative infinity.
func (f *Family) Shr(a Number, count uint64) Number {
	if a.Sign == 0 {
		return ZeroNumber()
	}
	d, lost := f.shrMagnitude(a.Digits, count)
	if a.Sign < 0 && lost {
		d = f.increment(d)
	}
	return Canonical(Number{Sign: a.Sign, Digits: d})
}
