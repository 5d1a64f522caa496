package signal

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/block"
)

func TestCanPass(t *testing.T) {
	if !Strong.CanPass(Weak) {
		t.Error("Strong should satisfy a Weak requirement")
	}
	if !Strong.CanPass(Medium) {
		t.Error("Strong should satisfy a Medium requirement")
	}
	if Medium.CanPass(Strong) {
		t.Error("Medium should not satisfy a Strong requirement")
	}
	if !Weak.CanPass(Weak) {
		t.Error("Weak should satisfy a Weak requirement")
	}
}

func TestIsStrongBlock(t *testing.T) {
	c := Characteristic{Connections: map[block.Block]Signal{block.K: Strong, block.O: Medium}}
	if !c.IsStrongBlock(block.K) {
		t.Error("block.K should be strong")
	}
	if c.IsStrongBlock(block.O) {
		t.Error("block.O is only Medium, not strong")
	}
	if c.IsStrongBlock(block.C) {
		t.Error("block.C has no declared connection")
	}
}

func TestCanConnect(t *testing.T) {
	c := Characteristic{Connections: map[block.Block]Signal{block.K: Strong}}
	if !c.CanConnect(Weak, block.K) {
		t.Error("Strong should satisfy a Weak request")
	}
	if c.CanConnect(Strong, block.O) {
		t.Error("an undeclared block should never satisfy a connection request")
	}
}

func TestPredicateConstructors(t *testing.T) {
	connectTo := ConnectTo(block.K, Medium)
	if connectTo.Kind != CanConnectTo || connectTo.Block != block.K || connectTo.Signal != Medium {
		t.Errorf("ConnectTo() = %+v, unexpected", connectTo)
	}

	is := Is('x')
	if is.Kind != CanIs || is.Char != 'x' {
		t.Errorf("Is() = %+v, unexpected", is)
	}

	all := IsStrongAll(block.K, block.O)
	if all.Kind != CanIsStrongAll || len(all.Blocks) != 2 {
		t.Errorf("IsStrongAll() = %+v, unexpected", all)
	}
}
