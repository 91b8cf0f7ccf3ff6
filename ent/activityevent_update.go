// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhinav-rk/studyloop/ent/activityevent"
	"github.com/abhinav-rk/studyloop/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *ActivityEventUpdate) SetEventID(v string) *ActivityEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableEventID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdate) SetUserID(v string) *ActivityEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableUserID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdate) SetSessionID(v string) *ActivityEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSessionID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ActivityEventUpdate) SetEventType(v string) *ActivityEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableEventType(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ActivityEventUpdate) SetMode(v string) *ActivityEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableMode(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ActivityEventUpdate) SetSource(v string) *ActivityEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSource(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityEventUpdate) SetMetadata(v map[string]interface{}) *ActivityEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityEventUpdate) ClearMetadata() *ActivityEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *ActivityEventUpdate) SetTimestampMs(v int64) *ActivityEventUpdate {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableTimestampMs(v *int64) *ActivityEventUpdate {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *ActivityEventUpdate) AddTimestampMs(v int64) *ActivityEventUpdate {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := activityevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := activityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(activityevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(activityevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(activityevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(activityevent.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(activityevent.FieldTimestampMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *ActivityEventUpdateOne) SetEventID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableEventID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdateOne) SetUserID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableUserID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdateOne) SetSessionID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSessionID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ActivityEventUpdateOne) SetEventType(v string) *ActivityEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableEventType(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ActivityEventUpdateOne) SetMode(v string) *ActivityEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableMode(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ActivityEventUpdateOne) SetSource(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSource(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityEventUpdateOne) SetMetadata(v map[string]interface{}) *ActivityEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityEventUpdateOne) ClearMetadata() *ActivityEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *ActivityEventUpdateOne) SetTimestampMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableTimestampMs(v *int64) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *ActivityEventUpdateOne) AddTimestampMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := activityevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := activityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(activityevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(activityevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(activityevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(activityevent.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(activityevent.FieldTimestampMs, field.TypeInt64, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
