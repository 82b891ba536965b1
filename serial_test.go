// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgio_test

import (
	"testing"

	"code.hybscloud.com/pgio"
)

func TestSerialMonotonic(t *testing.T) {
	in1 := pgio.NewInterp(newFakeConn())
	in2 := pgio.NewInterp(newFakeConn())
	in3 := pgio.NewInterp(newFakeConn())

	if in1.Serial() >= in2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", in1.Serial(), in2.Serial())
	}
	if in2.Serial() >= in3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", in2.Serial(), in3.Serial())
	}
}

func TestInterpVisitor(t *testing.T) {
	conn := newFakeConn()
	in := pgio.NewInterp(conn)
	if in.Visitor() != pgio.Visitor(conn) {
		t.Fatal("Visitor() does not return the bound visitor")
	}
}
