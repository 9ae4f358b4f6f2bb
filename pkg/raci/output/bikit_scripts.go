package output

// Static script content of the BI starter kit. The CSV tables these
// scripts import are generated next to them by WriteKit.

const powerQueryScript = `// RACI Dashboard - Power Query Auto-Import Script
//
// HOW TO USE:
//   1. Open Power BI Desktop
//   2. Home > Transform Data > Advanced Editor
//   3. Paste this ENTIRE script, replacing the default query
//   4. Update FolderPath below to the folder containing the CSV files
//   5. Click "Done"

let
    // *** CHANGE THIS PATH to where you saved the CSV files ***
    FolderPath = "C:\RACI_PowerBI\",

    Roles_Raw = Csv.Document(
        File.Contents(FolderPath & "Roles.csv"),
        [Delimiter=",", Encoding=65001, QuoteStyle=QuoteStyle.Csv]
    ),
    Roles_Headers = Table.PromoteHeaders(Roles_Raw, [PromoteAllScalars=true]),
    Roles = Table.TransformColumnTypes(Roles_Headers, {
        {"RoleID", type text},
        {"RoleLabel", type text},
        {"RoleShort", type text},
        {"RoleColor", type text},
        {"Status", type text}
    }),

    Capabilities_Raw = Csv.Document(
        File.Contents(FolderPath & "Capabilities.csv"),
        [Delimiter=",", Encoding=65001, QuoteStyle=QuoteStyle.Csv]
    ),
    Capabilities_Headers = Table.PromoteHeaders(Capabilities_Raw, [PromoteAllScalars=true]),
    Capabilities = Table.TransformColumnTypes(Capabilities_Headers, {
        {"CapabilityID", Int64.Type},
        {"Category", type text},
        {"CategoryColor", type text},
        {"Capability", type text},
        {"Description", type text},
        {"MaturityNow", type number},
        {"MaturityTarget", type number},
        {"MaturityDelta", type number}
    }),

    RACI_Raw = Csv.Document(
        File.Contents(FolderPath & "RACI_Assignments.csv"),
        [Delimiter=",", Encoding=65001, QuoteStyle=QuoteStyle.Csv]
    ),
    RACI_Headers = Table.PromoteHeaders(RACI_Raw, [PromoteAllScalars=true]),
    RACI_Assignments = Table.TransformColumnTypes(RACI_Headers, {
        {"CapabilityID", Int64.Type},
        {"RoleID", type text},
        {"Category", type text},
        {"Capability", type text},
        {"RoleLabel", type text},
        {"RACI", type text},
        {"Weight", Int64.Type},
        {"IsResponsible", Int64.Type},
        {"IsAccountable", Int64.Type}
    })
in
    RACI_Assignments

// To also load Roles and Capabilities as separate tables, create two
// blank queries and paste the matching Csv.Document block from above,
// or simply use Get Data > Text/CSV three times.
`

const daxMeasuresHeader = `// RACI Dashboard - DAX Measures
//
// HOW TO USE: in Power BI Desktop, select the RACI_Assignments table,
// click "New Measure", and paste each measure below one at a time.

// ASSIGNMENT COUNTS

Total Assignments = COUNTROWS(RACI_Assignments)

R Count = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RACI] = "R")

A Count = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RACI] = "A")

C Count = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RACI] = "C")

I Count = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RACI] = "I")

// WORKLOAD

Weighted Load = SUM(RACI_Assignments[Weight])

Avg Load Per Role =
    DIVIDE(
        COUNTROWS(RACI_Assignments),
        DISTINCTCOUNT(RACI_Assignments[RoleID])
    )

// MATURITY

Avg Maturity Now = AVERAGE(Capabilities[MaturityNow])

Avg Maturity Target = AVERAGE(Capabilities[MaturityTarget])

Maturity Gap = [Avg Maturity Target] - [Avg Maturity Now]

// COVERAGE & HEALTH

Total Capabilities = COUNTROWS(Capabilities)

Orphaned Capabilities =
    COUNTROWS(
        FILTER(
            Capabilities,
            ISBLANK(
                CALCULATE(
                    COUNTROWS(RACI_Assignments),
                    RACI_Assignments[RACI] = "R"
                )
            )
        )
    )

Coverage % =
    DIVIDE(
        [Total Capabilities] - [Orphaned Capabilities],
        [Total Capabilities]
    )

Dual-R Capabilities =
    // Capabilities with more than one Responsible role
    COUNTROWS(
        FILTER(
            Capabilities,
            CALCULATE(
                COUNTROWS(RACI_Assignments),
                RACI_Assignments[RACI] = "R"
            ) > 1
        )
    )

No-A Capabilities =
    // Capabilities with no Accountable role
    COUNTROWS(
        FILTER(
            Capabilities,
            ISBLANK(
                CALCULATE(
                    COUNTROWS(RACI_Assignments),
                    RACI_Assignments[RACI] = "A"
                )
            )
        )
    )

RACI Color =
    SWITCH(
        SELECTEDVALUE(RACI_Assignments[RACI]),
        "R", "#4ae0b0",
        "A", "#e06060",
        "C", "#6090e0",
        "I", "#404858",
        "#808080"
    )
`

const quickStart = `RACI Dashboard - Power BI Quick Start Guide
=============================================

FILES
-----
  Roles.csv              Role dimension table (1 row per role)
  Capabilities.csv       Capability dimension + maturity facts
  RACI_Assignments.csv   Fact table (1 row per role-capability pair)
  PowerQuery_Import.m    Power Query script for auto-import
  DAX_Measures.dax       Ready-to-paste DAX measures
  PowerBI_QuickStart.txt This file

FASTEST WAY
-----------
  1. Open Power BI Desktop
  2. Get Data > Text/CSV > import each of the three CSV files
  3. In Model View, create relationships:
       Roles[RoleID]              1 --* RACI_Assignments[RoleID]
       Capabilities[CapabilityID] 1 --* RACI_Assignments[CapabilityID]
  4. Add measures from DAX_Measures.dax

RECOMMENDED VISUALS
-------------------
  Responsibility heatmap (Matrix): categories/capabilities as rows,
    RoleShort as columns, first RACI value as cells, conditional
    background R=#4ae0b0 A=#e06060 C=#6090e0 I=#404858.
  Workload balance (Stacked Bar): RoleLabel vs assignment counts,
    legend on RACI.
  Ownership treemap: category > capability weighted by R Count.
  Maturity gap (Clustered Bar): category averages of MaturityNow vs
    MaturityTarget.

THEME
-----
  Page background #080c12, card background #101820, text #c0c8d8,
  accent #4ae0b0.
`
