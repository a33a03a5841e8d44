package companieshouse

// URL path segments for the Companies House API. A handful of entries carry an
// embedded slash; they are single logical segments as far as dispatch goes.
const (
	pathCompany                        = "company"
	pathOfficers                       = "officers"
	pathRegisters                      = "registers"
	pathCharges                        = "charges"
	pathExemptions                     = "exemptions"
	pathFilingHistory                  = "filing-history"
	pathInsolvency                     = "insolvency"
	pathDisqualificationsCorporate     = "disqualified-officers/corporate"
	pathDisqualificationsNatural       = "disqualified-officers/natural"
	pathUKEstablishments               = "uk-establishments"
	pathPSC                            = "persons-with-significant-control"
	pathPSCStatements                  = "persons-with-significant-control-statements"
	pathSuperSecure                    = "super-secure"
	pathSuperSecureBeneficialOwner     = "super-secure-beneficial-owner"
	pathLegalPerson                    = "legal-person"
	pathLegalPersonBeneficialOwner     = "legal-person-beneficial-owner"
	pathIndividual                     = "individual"
	pathIndividualBeneficialOwner      = "individual-beneficial-owner"
	pathCorporateEntity                = "corporate-entity"
	pathCorporateEntityBeneficialOwner = "corporate-entity-beneficial-owner"
	pathAppointments                   = "appointments"
	pathAdvancedCompanySearch          = "advanced-search/companies"
	pathSearchAll                      = "search"
	pathSearchCompanies                = "search/companies"
	pathSearchOfficers                 = "search/officers"
	pathSearchDisqualifiedOfficers     = "search/disqualified-officers"
	pathAlphabeticalCompanySearch      = "alphabetic-search/companies"
	pathDissolvedCompanySearch         = "dissolved-search/companies"
)
