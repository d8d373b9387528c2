// Package org contains the containers that own employees: departments and
// projects, each backed by exactly one employee.Repository, and the Company
// aggregate that owns departments and projects.
package org
