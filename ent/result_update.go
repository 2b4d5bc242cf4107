// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/typeprint/ent/predicate"
	"github.com/abhisek/typeprint/ent/result"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultUpdate) SetSessionID(v string) *ResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableSessionID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRespondent sets the "respondent" field.
func (_u *ResultUpdate) SetRespondent(v string) *ResultUpdate {
	_u.mutation.SetRespondent(v)
	return _u
}

// SetNillableRespondent sets the "respondent" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableRespondent(v *string) *ResultUpdate {
	if v != nil {
		_u.SetRespondent(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *ResultUpdate) SetTypeCode(v string) *ResultUpdate {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTypeCode(v *string) *ResultUpdate {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdate) SetData(v map[string]interface{}) *ResultUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *ResultUpdate) SetAnswered(v int) *ResultUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableAnswered(v *int) *ResultUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *ResultUpdate) AddAnswered(v int) *ResultUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetOmitted sets the "omitted" field.
func (_u *ResultUpdate) SetOmitted(v int) *ResultUpdate {
	_u.mutation.ResetOmitted()
	_u.mutation.SetOmitted(v)
	return _u
}

// SetNillableOmitted sets the "omitted" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableOmitted(v *int) *ResultUpdate {
	if v != nil {
		_u.SetOmitted(*v)
	}
	return _u
}

// AddOmitted adds value to the "omitted" field.
func (_u *ResultUpdate) AddOmitted(v int) *ResultUpdate {
	_u.mutation.AddOmitted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResultUpdate) SetDurationSecs(v int) *ResultUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableDurationSecs(v *int) *ResultUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResultUpdate) AddDurationSecs(v int) *ResultUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ResultUpdate) SetFinishedAt(v time.Time) *ResultUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableFinishedAt(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := result.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Result.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeCode(); ok {
		if err := result.TypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "type_code", err: fmt.Errorf(`ent: validator failed for field "Result.type_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(result.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Respondent(); ok {
		_spec.SetField(result.FieldRespondent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(result.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(result.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(result.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Omitted(); ok {
		_spec.SetField(result.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOmitted(); ok {
		_spec.AddField(result.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(result.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(result.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(result.FieldFinishedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResultUpdateOne) SetSessionID(v string) *ResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableSessionID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRespondent sets the "respondent" field.
func (_u *ResultUpdateOne) SetRespondent(v string) *ResultUpdateOne {
	_u.mutation.SetRespondent(v)
	return _u
}

// SetNillableRespondent sets the "respondent" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableRespondent(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetRespondent(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *ResultUpdateOne) SetTypeCode(v string) *ResultUpdateOne {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTypeCode(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdateOne) SetData(v map[string]interface{}) *ResultUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *ResultUpdateOne) SetAnswered(v int) *ResultUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableAnswered(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *ResultUpdateOne) AddAnswered(v int) *ResultUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetOmitted sets the "omitted" field.
func (_u *ResultUpdateOne) SetOmitted(v int) *ResultUpdateOne {
	_u.mutation.ResetOmitted()
	_u.mutation.SetOmitted(v)
	return _u
}

// SetNillableOmitted sets the "omitted" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableOmitted(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetOmitted(*v)
	}
	return _u
}

// AddOmitted adds value to the "omitted" field.
func (_u *ResultUpdateOne) AddOmitted(v int) *ResultUpdateOne {
	_u.mutation.AddOmitted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResultUpdateOne) SetDurationSecs(v int) *ResultUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableDurationSecs(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResultUpdateOne) AddDurationSecs(v int) *ResultUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ResultUpdateOne) SetFinishedAt(v time.Time) *ResultUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableFinishedAt(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := result.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Result.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeCode(); ok {
		if err := result.TypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "type_code", err: fmt.Errorf(`ent: validator failed for field "Result.type_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(result.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Respondent(); ok {
		_spec.SetField(result.FieldRespondent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(result.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(result.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(result.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Omitted(); ok {
		_spec.SetField(result.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOmitted(); ok {
		_spec.AddField(result.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(result.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(result.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(result.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
