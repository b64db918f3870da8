// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"bytes"
	"testing"
)

func TestInvoked(t *testing.T) {
	Reset()
	var buffer bytes.Buffer
	output = &buffer
	defer func() { Reset() }()

	if Invoked() {
		t.Fatal("Invoked should be false before any call")
	}

	Blob1()
	if Invoked() {
		t.Fatal("Invoked should be false after only Blob1")
	}

	Blob2()
	if !Invoked() {
		t.Fatal("Invoked should be true after both calls")
	}

	want := "blob: DoBlob1\nblob: DoBlob2\n"
	if buffer.String() != want {
		t.Errorf("trace output = %q, want %q", buffer.String(), want)
	}
}
