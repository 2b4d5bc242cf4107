// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/typeprint/ent/assessmentevent"
	"github.com/abhisek/typeprint/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdate) SetAction(v string) *AssessmentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAction(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRespondent sets the "respondent" field.
func (_u *AssessmentEventUpdate) SetRespondent(v string) *AssessmentEventUpdate {
	_u.mutation.SetRespondent(v)
	return _u
}

// SetNillableRespondent sets the "respondent" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRespondent(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRespondent(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *AssessmentEventUpdate) SetTypeCode(v string) *AssessmentEventUpdate {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTypeCode(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AssessmentEventUpdate) SetAnswered(v int) *AssessmentEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAnswered(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *AssessmentEventUpdate) AddAnswered(v int) *AssessmentEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetOmitted sets the "omitted" field.
func (_u *AssessmentEventUpdate) SetOmitted(v int) *AssessmentEventUpdate {
	_u.mutation.ResetOmitted()
	_u.mutation.SetOmitted(v)
	return _u
}

// SetNillableOmitted sets the "omitted" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableOmitted(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetOmitted(*v)
	}
	return _u
}

// AddOmitted adds value to the "omitted" field.
func (_u *AssessmentEventUpdate) AddOmitted(v int) *AssessmentEventUpdate {
	_u.mutation.AddOmitted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdate) SetDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationSecs(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdate) AddDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Respondent(); ok {
		_spec.SetField(assessmentevent.FieldRespondent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(assessmentevent.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(assessmentevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(assessmentevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Omitted(); ok {
		_spec.SetField(assessmentevent.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOmitted(); ok {
		_spec.AddField(assessmentevent.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdateOne) SetAction(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAction(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRespondent sets the "respondent" field.
func (_u *AssessmentEventUpdateOne) SetRespondent(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetRespondent(v)
	return _u
}

// SetNillableRespondent sets the "respondent" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRespondent(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRespondent(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *AssessmentEventUpdateOne) SetTypeCode(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTypeCode(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AssessmentEventUpdateOne) SetAnswered(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAnswered(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *AssessmentEventUpdateOne) AddAnswered(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetOmitted sets the "omitted" field.
func (_u *AssessmentEventUpdateOne) SetOmitted(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetOmitted()
	_u.mutation.SetOmitted(v)
	return _u
}

// SetNillableOmitted sets the "omitted" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableOmitted(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetOmitted(*v)
	}
	return _u
}

// AddOmitted adds value to the "omitted" field.
func (_u *AssessmentEventUpdateOne) AddOmitted(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddOmitted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) SetDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationSecs(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) AddDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Respondent(); ok {
		_spec.SetField(assessmentevent.FieldRespondent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(assessmentevent.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(assessmentevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(assessmentevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Omitted(); ok {
		_spec.SetField(assessmentevent.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOmitted(); ok {
		_spec.AddField(assessmentevent.FieldOmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
