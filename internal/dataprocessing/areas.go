package dataprocessing

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// MergeRegionsAndDepartments builds the area lookup table with columns
// code_reg, name_reg, code_dep and name_dep, one row per department whose
// region code exists in regions.
func MergeRegionsAndDepartments(regions, departments dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(regions, "regions", regionColumns); err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("merge regions and departments", err)
	}
	if err := requireColumns(departments, "departments", departmentColumns); err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("merge regions and departments", err)
	}

	reg := regions.
		Drop([]string{colSlug, colID}).
		Rename(domain.ColCodeReg, colCode).
		Rename(domain.ColNameReg, colName)

	dep := departments.
		Drop([]string{colSlug, colID}).
		Rename(domain.ColCodeReg, colRegionCode).
		Rename(domain.ColCodeDep, colCode).
		Rename(domain.ColNameDep, colName)

	areas := reg.InnerJoin(dep, domain.ColCodeReg).Select(areaColumns)
	if areas.Err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("join regions and departments", areas.Err)
	}
	return areas, nil
}
