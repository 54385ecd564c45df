package ir

import (
	"testing"
)

func TestSetKeepsPosition(t *testing.T) {
	o := Object()
	if o.Set("a", FromInt(1)) {
		t.Fatal("a reported as existing")
	}
	o.Set("b", FromInt(2))
	if !o.Set("a", FromInt(3)) {
		t.Fatal("a not reported as existing")
	}
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys %v", keys)
	}
	if v := Get(o, "a"); v == nil || *v.Int64 != 3 {
		t.Fatalf("a = %v", v)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := obj("list", FromSlice([]*Node{FromInt(1)}), "f", FromFloat(2.5))
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	Get(c, "list").Append(FromInt(2))
	*Get(c, "f").Float64 = 0
	if Get(orig, "list").Len() != 1 {
		t.Error("clone shares array")
	}
	if *Get(orig, "f").Float64 != 2.5 {
		t.Error("clone shares float")
	}
}

func TestNumberKinds(t *testing.T) {
	tests := []struct {
		node    *Node
		isInt   bool
		isFloat bool
	}{
		{FromInt(3), true, false},
		{FromFloat(3), false, true},
		{FromNumber("99999999999999999999"), true, false},
		{FromNumber("1e999"), false, true},
		{FromString("3"), false, false},
	}
	for _, tt := range tests {
		if tt.node.IsInt() != tt.isInt || tt.node.IsFloat() != tt.isFloat {
			t.Errorf("%+v: IsInt=%t IsFloat=%t", tt.node, tt.node.IsInt(), tt.node.IsFloat())
		}
	}
}

func TestVisit(t *testing.T) {
	doc := obj("a", FromSlice([]*Node{FromInt(1), FromInt(2)}), "b", FromString("x"))
	pre, post := 0, 0
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d", pre, post)
	}
}

func TestTruth(t *testing.T) {
	for _, n := range []*Node{FromBool(true), FromInt(1), FromString("x"), FromSlice([]*Node{Null()})} {
		if !Truth(n) {
			t.Errorf("%+v not truthy", n)
		}
	}
	for _, n := range []*Node{Null(), FromBool(false), FromInt(0), FromFloat(0), FromString(""), Array(), Object()} {
		if Truth(n) {
			t.Errorf("%+v truthy", n)
		}
	}
}
