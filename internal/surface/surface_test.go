package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefAndCheckIdentityFunction(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`
def id : forall a : Prop, forall x : a, a :=
  fun a : Prop => fun x : a => x ;
check id ;
`)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "id defined", out[0])
	assert.Contains(t, out[1], "forall")
}

func TestEvalReducesApplication(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`eval (fun a : Prop => a) False ;`)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "False", out[0])
}

func TestCheckWithExpectedTypeSucceeds(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`check False : Prop ;`)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.NotContains(t, out[0], "error")
}

func TestCheckWithWrongExpectedTypeReportsError(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`check False : False ;`)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.True(t, strings.Contains(out[0], "K000") || strings.Contains(out[0], "error"))
}

func TestAxiomInstantiationWithExplicitLevels(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`check Eq.{0} ;`)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.NotContains(t, out[0], "error")
}

func TestDefineAndInstantiatePolymorphicDeclaration(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`
def box.{u} : Sort u+1 := Sort u ;
check box.{0} ;
`)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "box defined", out[0])
	assert.NotContains(t, out[1], "error")
}

func TestParseErrorIsReported(t *testing.T) {
	in := NewInterpreter()
	_, err := in.Run(`def : Prop := Prop ;`)
	assert.Error(t, err)
}

func TestUnknownIdentifierIsReported(t *testing.T) {
	in := NewInterpreter()
	out, err := in.Run(`eval doesNotExist ;`)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Contains(t, out[0], "K0010")
}
