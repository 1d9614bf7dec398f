// Package testutil provides deterministic fakes shared by jointpanel tests.
package testutil
