package classify

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LuaFunctionName is the global a Lua rule script must define.
const LuaFunctionName = "is_block_opener"

var ErrLuaRuleMissing = errors.New("lua rule does not define " + LuaFunctionName)

// LuaRule is a Rule backed by a Lua predicate:
//
//	function is_block_opener(line) return line:sub(1, 1) == "+" end
//
// The script runs in a state with only the base, string, table and math
// libraries. A LuaRule is not safe for concurrent use.
type LuaRule struct {
	name  string
	state *lua.LState
	fn    lua.LValue
}

// NewLuaRule evaluates source and binds its is_block_opener function.
func NewLuaRule(name, source string) (*LuaRule, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	if err := openSafeLibraries(L); err != nil {
		L.Close()
		return nil, err
	}
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("load lua rule %s: %w", name, err)
	}

	fn := L.GetGlobal(LuaFunctionName)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("load lua rule %s: %w", name, ErrLuaRuleMissing)
	}
	return &LuaRule{name: name, state: L, fn: fn}, nil
}

func openSafeLibraries(L *lua.LState) error {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := L.CallByParam(lua.P{Fn: L.NewFunction(lib.open), NRet: 0, Protect: true}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("open lua %s library: %w", lib.name, err)
		}
	}
	return nil
}

func (r *LuaRule) Name() string { return r.name }

// Matches calls the predicate. Runtime errors count as no match.
func (r *LuaRule) Matches(content string) bool {
	if r.state == nil {
		return false
	}
	err := r.state.CallByParam(lua.P{Fn: r.fn, NRet: 1, Protect: true}, lua.LString(content))
	if err != nil {
		return false
	}
	ret := r.state.Get(-1)
	r.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state.
func (r *LuaRule) Close() {
	if r.state != nil {
		r.state.Close()
		r.state = nil
	}
}
