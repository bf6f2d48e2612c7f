// Package search evaluates the user-search predicate.
//
// The predicate is not a static function: the raw search term is spliced
// into the source text of a Lua chunk which is then compiled and run. That
// makes the term part of the program, which is the code-injection surface
// this app exists to demonstrate. A term that breaks out of the string
// literal can change the predicate's meaning or fail to compile; compile
// and runtime errors are returned to the caller, which displays them.
package search

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"vulnsocial/internal/models"
)

// predicateSource is the chunk template. The lowercased term is spliced
// verbatim into both string literals.
const predicateSource = `
return function(username, bio)
    return string.find(string.lower(username), '%s', 1, true) ~= nil
        or string.find(string.lower(bio), '%s', 1, true) ~= nil
end
`

// Script builds the Lua source for the given term. Exposed so tests and
// logs can show exactly what gets compiled.
func Script(term string) string {
	lowered := strings.ToLower(term)
	return fmt.Sprintf(predicateSource, lowered, lowered)
}

// Match compiles the predicate for term and applies it to every user,
// returning the users it accepts in sequence order.
func Match(users []*models.User, term string) ([]*models.User, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(Script(term)); err != nil {
		return nil, err
	}

	fn, ok := L.Get(-1).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("search predicate did not compile to a function")
	}
	L.Pop(1)

	var matched []*models.User
	for _, u := range users {
		if err := L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LString(u.Username), lua.LString(u.Bio)); err != nil {
			return nil, err
		}
		ret := L.Get(-1)
		L.Pop(1)
		if lua.LVAsBool(ret) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
