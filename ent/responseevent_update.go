// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/typeprint/ent/predicate"
	"github.com/abhisek/typeprint/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v int) *ResponseEventUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ResponseEventUpdate) AddItemID(v int) *ResponseEventUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// SetDichotomy sets the "dichotomy" field.
func (_u *ResponseEventUpdate) SetDichotomy(v string) *ResponseEventUpdate {
	_u.mutation.SetDichotomy(v)
	return _u
}

// SetNillableDichotomy sets the "dichotomy" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDichotomy(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetDichotomy(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResponseEventUpdate) SetAction(v string) *ResponseEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAction(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetChoiceKey sets the "choice_key" field.
func (_u *ResponseEventUpdate) SetChoiceKey(v string) *ResponseEventUpdate {
	_u.mutation.SetChoiceKey(v)
	return _u
}

// SetNillableChoiceKey sets the "choice_key" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableChoiceKey(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetChoiceKey(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ResponseEventUpdate) SetTimeMs(v int) *ResponseEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTimeMs(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ResponseEventUpdate) AddTimeMs(v int) *ResponseEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dichotomy(); ok {
		if err := responseevent.DichotomyValidator(v); err != nil {
			return &ValidationError{Name: "dichotomy", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.dichotomy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := responseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(responseevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dichotomy(); ok {
		_spec.SetField(responseevent.FieldDichotomy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(responseevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceKey(); ok {
		_spec.SetField(responseevent.FieldChoiceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(responseevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(responseevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ResponseEventUpdateOne) AddItemID(v int) *ResponseEventUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// SetDichotomy sets the "dichotomy" field.
func (_u *ResponseEventUpdateOne) SetDichotomy(v string) *ResponseEventUpdateOne {
	_u.mutation.SetDichotomy(v)
	return _u
}

// SetNillableDichotomy sets the "dichotomy" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDichotomy(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDichotomy(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResponseEventUpdateOne) SetAction(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAction(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetChoiceKey sets the "choice_key" field.
func (_u *ResponseEventUpdateOne) SetChoiceKey(v string) *ResponseEventUpdateOne {
	_u.mutation.SetChoiceKey(v)
	return _u
}

// SetNillableChoiceKey sets the "choice_key" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableChoiceKey(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetChoiceKey(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ResponseEventUpdateOne) SetTimeMs(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTimeMs(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ResponseEventUpdateOne) AddTimeMs(v int) *ResponseEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dichotomy(); ok {
		if err := responseevent.DichotomyValidator(v); err != nil {
			return &ValidationError{Name: "dichotomy", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.dichotomy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := responseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(responseevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dichotomy(); ok {
		_spec.SetField(responseevent.FieldDichotomy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(responseevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceKey(); ok {
		_spec.SetField(responseevent.FieldChoiceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(responseevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(responseevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
