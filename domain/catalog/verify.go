package catalog

import (
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/result"
	"github.com/go-htn/htngo/domain/todo"
)

// Reserved task names for the built-in verification protocol. When
// VerifyGoals is enabled, the planner follows a successful unigoal/multigoal
// refinement with a Verify todo-item (todo.KindVerify); its refineVerify
// maps that item onto these names and runs the task methods registered
// under them.
const (
	VerifyGoalTask      = "_verify_g"
	VerifyMultigoalTask = "_verify_mg"
)

// VerifyOutcome describes the result of a built-in verification method.
// Neither the verification methods below nor application/planner use it:
// they report only through result.Outcome (Ok or Fail).
type VerifyOutcome struct {
	Failed  bool
	Message string
}

// registerVerificationMethods installs _m_verify_g and _m_verify_mg under
// the reserved task names, exactly as spec.md §4.3.5 describes: both
// return Ok(nil) ("no further work") on success, Fail() otherwise.
//
// Args convention for _verify_g: [methodName string, varName string, arg any, desired any, depth int].
// Args convention for _verify_mg: [methodName string, mg htnstate.Multigoal, depth int].
func registerVerificationMethods(d *Domain) {
	_ = d.DeclareTaskMethods(VerifyGoalTask, TaskMethod{
		name: "_m_verify_g",
		fn:   verifyGoal,
	})
	_ = d.DeclareTaskMethods(VerifyMultigoalTask, TaskMethod{
		name: "_m_verify_mg",
		fn:   verifyMultigoal,
	})
}

func verifyGoal(s htnstate.State, args []any) result.Outcome[[]todo.Item] {
	if len(args) != 5 {
		return result.Fail[[]todo.Item]()
	}
	varName, _ := args[1].(string)
	arg := args[2]
	desired := args[3]

	actual, ok := s.Get(varName, arg)
	if !ok || !htnstate.TermEqual(actual, desired) {
		return result.Fail[[]todo.Item]()
	}
	return result.Ok([]todo.Item{})
}

func verifyMultigoal(s htnstate.State, args []any) result.Outcome[[]todo.Item] {
	if len(args) != 3 {
		return result.Fail[[]todo.Item]()
	}
	mg, ok := args[1].(htnstate.Multigoal)
	if !ok {
		return result.Fail[[]todo.Item]()
	}
	unmet := mg.NotAchieved(s)
	if len(unmet) != 0 {
		return result.Fail[[]todo.Item]()
	}
	return result.Ok([]todo.Item{})
}
