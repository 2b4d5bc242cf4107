// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/typeprint/ent/result"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResultCreate) SetSessionID(v string) *ResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRespondent sets the "respondent" field.
func (_c *ResultCreate) SetRespondent(v string) *ResultCreate {
	_c.mutation.SetRespondent(v)
	return _c
}

// SetNillableRespondent sets the "respondent" field if the given value is not nil.
func (_c *ResultCreate) SetNillableRespondent(v *string) *ResultCreate {
	if v != nil {
		_c.SetRespondent(*v)
	}
	return _c
}

// SetTypeCode sets the "type_code" field.
func (_c *ResultCreate) SetTypeCode(v string) *ResultCreate {
	_c.mutation.SetTypeCode(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ResultCreate) SetData(v map[string]interface{}) *ResultCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *ResultCreate) SetAnswered(v int) *ResultCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *ResultCreate) SetNillableAnswered(v *int) *ResultCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetOmitted sets the "omitted" field.
func (_c *ResultCreate) SetOmitted(v int) *ResultCreate {
	_c.mutation.SetOmitted(v)
	return _c
}

// SetNillableOmitted sets the "omitted" field if the given value is not nil.
func (_c *ResultCreate) SetNillableOmitted(v *int) *ResultCreate {
	if v != nil {
		_c.SetOmitted(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ResultCreate) SetDurationSecs(v int) *ResultCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ResultCreate) SetNillableDurationSecs(v *int) *ResultCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ResultCreate) SetFinishedAt(v time.Time) *ResultCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableFinishedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.Respondent(); !ok {
		v := result.DefaultRespondent
		_c.mutation.SetRespondent(v)
	}
	if _, ok := _c.mutation.Answered(); !ok {
		v := result.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.Omitted(); !ok {
		v := result.DefaultOmitted
		_c.mutation.SetOmitted(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := result.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		v := result.DefaultFinishedAt()
		_c.mutation.SetFinishedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Result.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := result.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Result.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Respondent(); !ok {
		return &ValidationError{Name: "respondent", err: errors.New(`ent: missing required field "Result.respondent"`)}
	}
	if _, ok := _c.mutation.TypeCode(); !ok {
		return &ValidationError{Name: "type_code", err: errors.New(`ent: missing required field "Result.type_code"`)}
	}
	if v, ok := _c.mutation.TypeCode(); ok {
		if err := result.TypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "type_code", err: fmt.Errorf(`ent: validator failed for field "Result.type_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "Result.data"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "Result.answered"`)}
	}
	if _, ok := _c.mutation.Omitted(); !ok {
		return &ValidationError{Name: "omitted", err: errors.New(`ent: missing required field "Result.omitted"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "Result.duration_secs"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "Result.finished_at"`)}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(result.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Respondent(); ok {
		_spec.SetField(result.FieldRespondent, field.TypeString, value)
		_node.Respondent = value
	}
	if value, ok := _c.mutation.TypeCode(); ok {
		_spec.SetField(result.FieldTypeCode, field.TypeString, value)
		_node.TypeCode = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(result.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Omitted(); ok {
		_spec.SetField(result.FieldOmitted, field.TypeInt, value)
		_node.Omitted = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(result.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(result.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
