package gocqlsource

import (
	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
)

// ConvertKeyspace maps one gocql keyspace snapshot to a driver descriptor,
// ready for meta.NewSchema.
func ConvertKeyspace(ks *gocql.KeyspaceMetadata) driver.KeyspaceDesc {
	if ks == nil {
		return driver.KeyspaceDesc{}
	}

	desc := driver.KeyspaceDesc{Name: ks.Name}
	for _, t := range ks.Tables {
		desc.Tables = append(desc.Tables, convertTable(t))
	}
	for _, v := range ks.MaterializedViews {
		desc.Views = append(desc.Views, convertView(ks, v))
	}
	for _, ut := range ks.UserTypes {
		fields := make([]datatype.UDTField, len(ut.FieldNames))
		for i, name := range ut.FieldNames {
			var ft *datatype.DataType
			if i < len(ut.FieldTypes) {
				ft = ConvertType(ut.FieldTypes[i])
			}
			fields[i] = datatype.UDTField{Name: name, Type: ft}
		}
		desc.UserTypes = append(desc.UserTypes, driver.UserTypeDesc{Name: ut.Name, Fields: fields})
	}
	return desc
}

func convertTable(t *gocql.TableMetadata) driver.TableDesc {
	if t == nil {
		return driver.TableDesc{}
	}

	desc := driver.TableDesc{Name: t.Name}
	// OrderedColumns preserves the server's column order; the positional
	// layout is rebuilt downstream from the key lists either way
	for _, name := range t.OrderedColumns {
		c, ok := t.Columns[name]
		if !ok {
			continue
		}
		desc.Columns = append(desc.Columns, driver.ColumnDesc{
			Name: c.Name,
			Type: ConvertType(c.Type),
			Kind: convertColumnKind(c.Kind),
		})
	}
	for _, c := range t.PartitionKey {
		desc.PartitionKeys = append(desc.PartitionKeys, c.Name)
	}
	for _, c := range t.ClusteringColumns {
		desc.ClusteringKeys = append(desc.ClusteringKeys, c.Name)
	}
	return desc
}

// convertView maps a materialized view. gocql tracks the column layout of a
// view as a table of the same name; when that entry is absent the base
// table's layout is the closest available description.
func convertView(ks *gocql.KeyspaceMetadata, v *gocql.MaterializedViewMetadata) driver.ViewDesc {
	desc := driver.ViewDesc{Name: v.Name}
	if v.BaseTable != nil {
		desc.BaseTable = v.BaseTable.Name
	}

	layout, ok := ks.Tables[v.Name]
	if !ok {
		layout = v.BaseTable
	}
	if layout != nil {
		t := convertTable(layout)
		desc.Columns = t.Columns
		desc.PartitionKeys = t.PartitionKeys
		desc.ClusteringKeys = t.ClusteringKeys
	}
	return desc
}

func convertColumnKind(k gocql.ColumnKind) driver.ColumnKind {
	switch k {
	case gocql.ColumnPartitionKey:
		return driver.ColumnPartitionKey
	case gocql.ColumnClusteringKey:
		return driver.ColumnClusteringKey
	case gocql.ColumnStatic:
		return driver.ColumnStatic
	default:
		return driver.ColumnRegular
	}
}
