package audit

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const actorKey = "audit:actor"

// Plugin registers the audit and soft-delete callbacks on a *gorm.DB.
type Plugin struct{}

// NewPlugin returns the plugin to pass to (*gorm.DB).Use.
func NewPlugin() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string {
	return "audit"
}

func (p *Plugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("audit:stamp_created", p.stampCreated); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("audit:stamp_updated", p.stampUpdated); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("audit:soft_delete", p.softDelete); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("audit:exclude_deleted", p.excludeDeleted); err != nil {
		return err
	}
	return cb.Row().Before("gorm:row").Register("audit:exclude_deleted_row", p.excludeDeleted)
}

// As returns a session whose writes are attributed to actor. The returned
// handle is safe to reuse for several statements.
func As(db *gorm.DB, actor Actor) *gorm.DB {
	if actor.IsZero() {
		actor = System
	}
	return db.Set(actorKey, actor).Session(&gorm.Session{})
}

func actorOf(db *gorm.DB) Actor {
	if v, ok := db.Get(actorKey); ok {
		if a, ok := v.(Actor); ok && !a.IsZero() {
			return a
		}
	}
	return System
}

// capabilities instantiates the statement's model type to check which
// interfaces it implements.
func capabilities(db *gorm.DB) (auditable, softDeletable bool) {
	if db.Statement.Schema == nil {
		return false, false
	}
	model := reflect.New(db.Statement.Schema.ModelType).Interface()
	_, auditable = model.(Auditable)
	_, softDeletable = model.(SoftDeletable)
	return auditable, softDeletable
}

func (p *Plugin) stampCreated(db *gorm.DB) {
	if db.Error != nil {
		return
	}
	auditable, softDeletable := capabilities(db)
	if !auditable && !softDeletable {
		return
	}

	now := db.NowFunc()
	actor := actorOf(db)

	eachModel(db.Statement.ReflectValue, func(model interface{}) {
		if a, ok := model.(Auditable); ok {
			f := a.AuditFields()
			f.CreatedAt = now
			f.CreatedBy = actor.DisplayName()
			f.UpdatedAt = nil
			f.UpdatedBy = nil
			if f.UserID == "" {
				f.UserID = actor.ID
			}
		}
		if s, ok := model.(SoftDeletable); ok {
			sd := s.SoftDeleteState()
			sd.IsDeleted = false
			sd.DeletedAt = nil
		}
	})
}

func (p *Plugin) stampUpdated(db *gorm.DB) {
	if db.Error != nil {
		return
	}
	auditable, softDeletable := capabilities(db)

	if softDeletable && !db.Statement.Unscoped {
		db.Statement.AddClause(clause.Where{Exprs: []clause.Expression{notDeleted()}})
	}
	if auditable {
		now := db.NowFunc()
		by := actorOf(db).DisplayName()
		db.Statement.SetColumn(ColumnUpdatedAt, &now, true)
		db.Statement.SetColumn(ColumnUpdatedBy, &by, true)
	}
}

// softDelete rewrites DELETE into an UPDATE of the soft-delete columns.
// Unscoped statements fall through to a physical delete.
func (p *Plugin) softDelete(db *gorm.DB) {
	if db.Error != nil || db.Statement.Unscoped || db.Statement.SQL.Len() > 0 {
		return
	}
	auditable, softDeletable := capabilities(db)
	if !softDeletable {
		return
	}

	stmt := db.Statement
	now := db.NowFunc()

	set := clause.Set{
		{Column: clause.Column{Name: ColumnIsDeleted}, Value: true},
		{Column: clause.Column{Name: ColumnDeletedAt}, Value: now},
	}
	if auditable {
		set = append(set,
			clause.Assignment{Column: clause.Column{Name: ColumnUpdatedAt}, Value: now},
			clause.Assignment{Column: clause.Column{Name: ColumnUpdatedBy}, Value: actorOf(db).DisplayName()},
		)
	}
	stmt.AddClause(set)

	_, queryValues := schema.GetIdentityFieldValuesMap(stmt.Context, stmt.ReflectValue, stmt.Schema.PrimaryFields)
	column, values := schema.ToQueryValues(stmt.Table, stmt.Schema.PrimaryFieldDBNames, queryValues)
	if len(values) > 0 {
		stmt.AddClause(clause.Where{Exprs: []clause.Expression{clause.IN{Column: column, Values: values}}})
	}

	if _, ok := stmt.Clauses["WHERE"]; !ok && !db.AllowGlobalUpdate {
		_ = db.AddError(gorm.ErrMissingWhereClause)
		return
	}

	stmt.AddClause(clause.Where{Exprs: []clause.Expression{notDeleted()}})
	stmt.AddClauseIfNotExists(clause.Update{})
	stmt.Build(db.Callback().Update().Clauses...)
}

func (p *Plugin) excludeDeleted(db *gorm.DB) {
	if db.Error != nil || db.Statement.Unscoped || db.Statement.SQL.Len() > 0 {
		return
	}
	if _, softDeletable := capabilities(db); softDeletable {
		db.Statement.AddClause(clause.Where{Exprs: []clause.Expression{notDeleted()}})
	}
}

func notDeleted() clause.Expression {
	return clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: ColumnIsDeleted},
		Value:  false,
	}
}

// eachModel calls fn with a pointer to every struct held by rv, which is
// either a single struct or a slice/array of structs or struct pointers.
func eachModel(rv reflect.Value, fn func(interface{})) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := reflect.Indirect(rv.Index(i))
			if elem.CanAddr() {
				fn(elem.Addr().Interface())
			}
		}
	case reflect.Struct:
		if rv.CanAddr() {
			fn(rv.Addr().Interface())
		}
	}
}
