// This file is part of Emuconsole.
//
// Emuconsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emuconsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emuconsole.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// expect is the core of the success/failure tests. returns true if the value
// represents success
func expect(t *testing.T, v interface{}) (bool, error) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v, nil
	case error:
		return v == nil, nil
	case nil:
		return true, nil
	}

	return false, fmt.Errorf("unsupported type (%T) for expectation testing", v)
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	ok, err := expect(t, v)
	if err != nil {
		t.Fatalf("%v", err)
		return false
	}

	if ok {
		switch v.(type) {
		case bool:
			t.Errorf("expected failure (bool)")
		case error:
			t.Errorf("expected failure (error)")
		default:
			t.Errorf("expected failure (nil)")
		}
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	ok, err := expect(t, v)
	if err != nil {
		t.Fatalf("%v", err)
		return false
	}

	if !ok {
		switch v := v.(type) {
		case bool:
			t.Errorf("expected success (bool)")
		case error:
			t.Errorf("expected success (error: %v)", v)
		}
		return false
	}

	return true
}
